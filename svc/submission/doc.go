// Package submission delivers validated form data to its destinations.
//
// Handlers call Dispatcher.Dispatch with a redacted payload once a form has
// passed validation. The dispatcher runs every Sink concurrently, bounds the
// wait with a timeout and reports the outcome to a Recorder:
//
//	d, err := submission.NewDispatcher(
//		[]submission.Sink{submission.NewLogSink(log), submission.NewWebhookSink(hook)},
//		submission.WithTimeout(cfg.Timeout),
//		submission.WithRecorder(m),
//	)
//	res, err := d.Dispatch(ctx, submission.KindCard, payload)
package submission
