// Package ssl stages the site certificate generated inside the
// Homestead guest and imports it into the host's trusted-certificate
// store, so the local domain is served over https without browser
// warnings.
package ssl
