// Package jwt issues and verifies the service's session tokens.
//
// Tokens are HS256-signed JWTs carrying the user id (sub), display name, and
// email, valid for seven days from issuance by default. The signing secret is
// process-wide read-only state injected at startup; there is no rotation and
// no revocation list, so possession of a valid unexpired token is proof of a
// prior successful authentication.
//
//	svc, err := jwt.New(cfg.Secret, jwt.WithTTL(cfg.TTL), jwt.WithIssuer("authsvc"))
//	token, err := svc.Generate(user.ID.String(), user.Name, user.Email)
//
// The HTTP middleware resolves a presented token back to caller identity:
//
//	r.Group(func(r chi.Router) {
//		r.Use(jwt.Middleware(svc))
//		r.Get("/auth/me", me)
//	})
//
//	claims, ok := jwt.GetClaims(r.Context())
package jwt
