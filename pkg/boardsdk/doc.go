/*
Package boardsdk provides a client SDK and the wire types of the Boardgate
game gateway.

# Overview

The gateway fronts a game backend for game clients and game servers. Every
API response is an envelope:

	{"ok": true, "data": {...}}
	{"ok": false, "error": "Invalid session"}

The SDK unwraps the envelope and returns data as a typed value, or an
*APIError carrying the HTTP status and the error message.

# Clients

The package is organized around three types:

  - SDKClient: public operations and sign-in
  - Session: a signed-in player, authenticated by X-Session-Token
  - KeyClient: a game server, authenticated by X-API-Key

Create an SDKClient for a game and sign in to obtain a Session:

	client := boardsdk.NewSDKClient("https://gateway.example.com", "tic-tac-toe")

	// Scoreboards are public
	board, err := client.GetScoreboard(ctx, "tic-tac-toe", "weekly", 10)

	// Sign in with a Google ID token
	session, signIn, err := client.SignInWithGoogle(ctx, boardsdk.GoogleSignInRequest{
		IDToken: idToken,
	})

Use the Session for player operations:

	play, err := session.StartPlaySession(ctx)

	score := 120.0
	_, err = session.SubmitScore(ctx, boardsdk.ScoreRequest{
		Score:            &score,
		PlaySessionToken: play.PlaySessionToken,
	})

	result, err := session.UnlockAchievements(ctx, "first-win", "ten-streak")

Game servers use an API key instead. The key selects the game:

	server := client.WithAPIKey(os.Getenv("BOARDGATE_API_KEY"))
	_, err := server.SubmitScore(ctx, boardsdk.ScoreRequest{PlayerID: playerID, Score: &score})

# Error Handling

Errors returned by the gateway are *APIError values:

	if boardsdk.IsRateLimited(err) {
		var apiErr *boardsdk.APIError
		errors.As(err, &apiErr)
		time.Sleep(time.Duration(apiErr.RetryAfter) * time.Second)
	}

IsUnauthorized, IsNotFound and IsUnavailable cover the other common cases.
A 503 means the gateway could not reach its backend; the request may be
retried.

# Health

GetLiveness and GetReadiness call the /livez and /readyz probes, which
return bare JSON instead of an envelope.
*/
package boardsdk
