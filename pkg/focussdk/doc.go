/*
Package focussdk is a Go client for the FocusFlow HTTP API and the home of
its wire types. The server encodes the same types, so a request that
round-trips through this package is by construction what the web client
sends.

# SDKClient vs Session

SDKClient covers the public endpoints (register, login, health). A Session
carries a bearer token and covers everything scoped to a user:

	client := focussdk.NewSDKClient("http://localhost:5000")

	session, err := client.AuthenticateWithPassword(ctx, "me@example.com", "secret123")
	if err != nil {
		return err
	}

	sess, err := session.StartSession(ctx, focussdk.StartSessionRequest{
		Duration: 25,
		Type:     focussdk.SessionTypeWork,
	})

	_, err = session.RecordInterruption(ctx, sess.ID, "phone")
	_, err = session.EndSession(ctx, sess.ID, focussdk.EndSessionRequest{Productivity: 8})

# Error Handling

Non-2xx responses come back as *APIError. Validation failures also carry
the per-field messages:

	var apiErr *focussdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == focussdk.ErrorCodeValidation {
		for _, f := range apiErr.Fields {
			fmt.Println(f.Field, f.Message)
		}
	}

Sessions hold no mutable state and are safe for concurrent use.
*/
package focussdk
