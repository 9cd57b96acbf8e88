// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the REST client, the guard layer (validation, rate
// limiting, error sanitization), the observable session and cart stores, and
// an interactive REPL. Typical flow: restore any live session, browse the
// menu, fill the cart, sign in, and place an order.
//
// Key features:
//   - Register / Login / Logout with client-side guarding
//   - Browse categories and search the menu
//   - Cart management: add with customizations, quantities, totals
//   - Order review with delivery fee and discount
//   - Catalog seeding in debug mode
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
