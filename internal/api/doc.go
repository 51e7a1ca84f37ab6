// Package api provides HTTP client functionality for communicating with the
// MailboxValidator API. It builds request URLs, performs a single GET per
// call, and maps the JSON body onto typed results.
//
// # Client Creation
//
// [NewClient] takes a [Config]. Only the API key is required; the base URL,
// HTTP client, user agent, logger and request ID generator all have
// defaults. The API key travels as the "key" query parameter, so it is
// replaced with "REDACTED" in every URL that reaches an error or log record.
//
// # Response Handling
//
// Every response shape carries error_code and error_message. [Client.Get]
// decodes those first; a non-empty error_code becomes an
// [apierrors.APIError] regardless of the other fields. Only then is the body
// decoded into the caller's result.
//
// Failures are reported as one of:
//
//   - [apierrors.NetworkError]: the request could not complete.
//   - [apierrors.DecodeError]: the body is not a JSON object of the
//     expected shape. The raw body is kept.
//   - [apierrors.HTTPError]: a non-2xx status with no error_code.
//   - [apierrors.APIError]: the API reported a failure.
//
// No request is ever retried.
//
// # Thread Safety
//
// The [Client] type is immutable after creation and safe for concurrent use.
package api
