package views

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/signup/modules/account"
)

const (
	registerFormID = "register-form"
	loginFormID    = "login-form"
)

func (v *Views) RegisterPage(p account.RegisterPageParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return v.layout(t("account.register.title"),
			el("main", attrs{"class": pageClass},
				el("div", attrs{"class": panelClass},
					el("h1", attrs{"class": titleClass}, text(t("account.register.title"))),
					v.flash(t, p.Flash),
					v.RegisterForm(account.RegisterFormParams{Form: p.Form}),
				),
			),
		)
	})
}

// RegisterForm is the #register-form fragment re-rendered on failed submits.
// Passwords are never written back into the markup.
func (v *Views) RegisterForm(p account.RegisterFormParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		f, errs := p.Form.Fields, p.Form.Errors
		return el("form", formAttrs(registerFormID, "/register", "registering"),
			el("div", attrs{"class": "grid grid-cols-2 gap-4"},
				field{Name: account.FieldFirstName, Label: t("account.fields.first_name"), Value: f.FirstName, Error: errs.Get(account.FieldFirstName)}.render(),
				field{Name: account.FieldLastName, Label: t("account.fields.last_name"), Value: f.LastName, Error: errs.Get(account.FieldLastName)}.render(),
			),
			field{Name: account.FieldEmail, Label: t("account.fields.email"), Type: "email", Value: f.Email, Error: errs.Get(account.FieldEmail)}.render(),
			field{Name: account.FieldPhone, Label: t("account.fields.phone"), Type: "tel", Value: f.Phone, Error: errs.Get(account.FieldPhone)}.render(),
			field{Name: account.FieldAddress, Label: t("account.fields.address"), Value: f.Address, Error: errs.Get(account.FieldAddress)}.render(),
			field{Name: account.FieldPassword, Label: t("account.fields.password"), Type: "password", Error: errs.Get(account.FieldPassword)}.render(),
			field{Name: account.FieldConfirmPassword, Label: t("account.fields.confirm_password"), Type: "password", Error: errs.Get(account.FieldConfirmPassword)}.render(),
			actionLink("/cards/new", secondary, text(t("account.register.add_card"))),
			submitButton(t("account.register.submit"), "registering"),
			el("div", attrs{"class": "text-center"},
				el("a", attrs{"href": "/login", "class": linkClass}, text(t("account.register.have_account"))),
			),
		)
	})
}

func (v *Views) LoginPage(p account.LoginPageParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		return v.layout(t("account.login.title"),
			el("main", attrs{"class": pageClass},
				el("div", attrs{"class": panelClass},
					el("h1", attrs{"class": titleClass}, text(t("account.login.title"))),
					v.LoginForm(account.LoginFormParams{Form: p.Form}),
				),
			),
		)
	})
}

func (v *Views) LoginForm(p account.LoginFormParams) templ.Component {
	return v.localized(func(t translateFunc) templ.Component {
		f, errs := p.Form.Fields, p.Form.Errors
		return el("form", formAttrs(loginFormID, "/login", "signingIn"),
			field{Name: account.FieldEmail, Label: t("account.fields.email"), Type: "email", Value: f.Email, Error: errs.Get(account.FieldEmail)}.render(),
			field{Name: account.FieldPassword, Label: t("account.fields.password"), Type: "password", Error: errs.Get(account.FieldPassword)}.render(),
			el("div", attrs{"class": "flex items-center justify-between"},
				el("label", attrs{"class": "flex items-center text-sm text-gray-900"},
					void("input", attrs{
						"id":      "remember",
						"name":    account.FieldRememberMe,
						"type":    "checkbox",
						"class":   "h-4 w-4 rounded border-gray-300 text-blue-600 focus:ring-blue-500",
						"checked": f.RememberMe,
					}),
					el("span", attrs{"class": "ml-2"}, text(t("account.login.remember"))),
				),
				el("a", attrs{"href": "#", "class": linkClass}, text(t("account.login.forgot"))),
			),
			submitButton(t("account.login.submit"), "signingIn"),
			el("div", attrs{"class": "text-center"},
				el("a", attrs{"href": "/register", "class": linkClass}, text(t("account.login.no_account"))),
			),
		)
	})
}
