// Package mailboxvalidator provides a Go client for the MailboxValidator
// email validation API.
//
// Three operations are available, each a single GET request:
//
//   - ValidateEmail: full validation (syntax, domain, SMTP, catch-all,
//     disposable, free, role, risk, overall status and score).
//   - IsDisposableEmail: whether the address belongs to a disposable provider.
//   - IsFreeEmail: whether the address belongs to a free provider.
//
// Basic usage:
//
//	client, err := mailboxvalidator.New("your-api-key")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := client.ValidateEmail(ctx, "example@example.com")
//	if errors.Is(err, mailboxvalidator.ErrInsufficientCredits) {
//	    log.Fatal("out of credits")
//	}
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if ok, known := result.Status.Bool(); known && ok {
//	    fmt.Println("deliverable")
//	}
//
// The package-level functions take the API key per call and are equivalent
// to New(apiKey) followed by the method of the same name.
//
// # Results
//
// Check outcomes are reported by the API as "True", "False" or "-" (not
// applicable), and "Unknown" for catch-all. They are decoded into Flag and
// CatchAll, whose values are the wire strings. Numbers are kept in their
// wire text as Decimal and Credits.
//
// # Errors
//
// A non-empty error_code in the response is returned as *APIError, which
// matches ErrMissingParameter, ErrAPIKeyNotFound, ErrAPIKeyDisabled,
// ErrAPIKeyExpired, ErrInsufficientCredits or ErrUnknown through errors.Is.
// Transport failures are *NetworkError, unparseable bodies *DecodeError and
// other non-2xx responses *HTTPError. Nothing is retried.
package mailboxvalidator
