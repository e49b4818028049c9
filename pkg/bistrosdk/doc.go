/*
Package bistrosdk provides a client SDK and the shared wire types for the
Bistro Boss API.

# Sessions

The API authenticates with an HttpOnly cookie named "token". A Client keeps
that cookie in its own jar, so signing in once authenticates every later
request made through the same Client:

	client := bistrosdk.NewClient("http://localhost:5000")

	if err := client.SignIn(ctx, "alice@example.com"); err != nil {
		return err
	}
	items, err := client.ListCart(ctx, "alice@example.com")

SignOut asks the server to expire the cookie. Use a separate Client per
identity.

# Errors

Failures are returned as *APIError. Compare against the predefined values
with errors.Is, which matches status code and error code:

	if errors.Is(err, bistrosdk.ErrForbidden) {
		// signed in, but not allowed
	}

ErrUnauthenticated (403) means no cookie was sent. ErrInvalidCredential (401)
means the cookie was present but failed verification or had expired.

The server writes its error bodies with the same APIError type, so both sides
agree on the format.
*/
package bistrosdk
