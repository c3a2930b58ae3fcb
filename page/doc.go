// Package page provides the leaf UI components the page dispatcher mounts.
//
// A [Site] builds each [Page] and renders it through a shared [resp.Responder],
// inside the site layout and with navigation built from the route table.
package page
