package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuth indicates credential or token failure. Fatal to the run.
	ErrAuth = errors.New("authentication failed")

	// ErrDocumentCreation indicates the initial form create call failed.
	// Fatal to the build.
	ErrDocumentCreation = errors.New("document creation failed")

	// ErrSectionInjection indicates a section's injection failed.
	// Logged and skipped; the build continues with the next section.
	ErrSectionInjection = errors.New("section injection failed")

	// ErrImageUpload indicates a header banner could not be rendered or
	// uploaded. Fatal to the section, not to the build.
	ErrImageUpload = errors.New("header image upload failed")

	// ErrRender indicates an unrecoverable drawing or IO failure while
	// producing a banner. Missing fonts are not a render error.
	ErrRender = errors.New("banner render failed")

	// ErrEmailSend indicates a single email could not be sent.
	// Logged per recipient; distribution continues.
	ErrEmailSend = errors.New("email send failed")

	// ErrRecipientLoad indicates the recipient source could not be read.
	// Fatal; reported before any remote call is made.
	ErrRecipientLoad = errors.New("recipient load failed")

	// ErrMissingConfig indicates required configuration keys are absent.
	ErrMissingConfig = errors.New("missing configuration")
)
