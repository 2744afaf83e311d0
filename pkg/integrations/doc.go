// Package integrations provides the HTTP plumbing shared by registry clients.
//
// # Overview
//
// [Client] wraps a resty client with default headers (User-Agent, Accept)
// and a request timeout. Its single capability is "fetch the JSON document
// at a URL": [Client.Get] performs one GET and decodes the body.
//
// Registry-specific clients live in subpackages:
//
//   - [rubygems]: RubyGems.org runtime dependency lookups
//
// # Errors
//
// Failures are returned as coded errors from [gterrors] and also wrap the
// sentinels [ErrNotFound] and [ErrNetwork], so both styles of check work:
//
//	if errors.Is(err, integrations.ErrNotFound) { ... }
//	if gterrors.Is(err, gterrors.ErrCodePackageNotFound) { ... }
//
// Nothing is retried. A transport failure, a non-2xx status or a malformed
// body surfaces to the caller on the first attempt.
//
// # Observability
//
// Every request reports to [observability.HTTP] hooks: OnRequest before the
// call, then OnResponse or OnError.
//
// [rubygems]: github.com/matzehuels/gemtree/pkg/integrations/rubygems
// [gterrors]: github.com/matzehuels/gemtree/pkg/errors
// [observability.HTTP]: github.com/matzehuels/gemtree/pkg/observability.HTTP
package integrations
