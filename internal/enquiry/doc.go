// Package enquiry accepts service enquiries submitted from the public web
// form and forwards each one to the business inbox as a plain-text email.
//
// A submission is validated, rendered into an eight-line notification,
// dispatched once through a mailer.Mailer, and answered with an Envelope:
//
//	{"ok":true}
//	{"ok":false,"error":"Invalid email address."}
//
// Nothing is stored. Service.Submit is safe for concurrent use.
package enquiry
