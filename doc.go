// Package rsvpkit is the client-side toolkit of a wedding RSVP application:
// localized string resolution, ephemeral session token storage for guest and
// admin logins, form field validation, and the guest/RSVP data shapes.
//
// # Quick Start
//
// Create a Client at application start and share it with the pages:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client, err := rsvpkit.New(rsvpkit.WithConfig(cfg))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.SetLanguage("es")
//	title := client.T("login.title")
//
// # Pieces
//
// Each concern also works standalone through its own package:
//
//   - pkg/i18n: dictionaries, the language resolver, placeholder interpolation
//   - pkg/tokenstore: guest/admin session tokens in ephemeral storage
//   - pkg/validate: pure field validators returning stable error codes
//   - pkg/guest: guest, companion, and RSVP payload shapes
//   - pkg/config: environment-driven settings
//   - pkg/logger: slog factory with context extractors
//
// Validation errors localize through the same resolver:
//
//	errs := payload.Validate(g.MaxCompanions)
//	errs.Translate(client.I18n().T)
package rsvpkit
