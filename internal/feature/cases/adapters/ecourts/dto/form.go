// Package dto holds the wire shapes exchanged with the eCourts portal.
package dto

import "net/url"

// CNRSearchForm is the form posted to a case-status endpoint.
type CNRSearchForm struct {
	CNR     string
	Captcha string
}

// Values encodes the form fields the portal expects.
func (f CNRSearchForm) Values() url.Values {
	v := url.Values{}
	v.Set("cnr_number", f.CNR)
	v.Set("captcha", f.Captcha)
	v.Set("submit", "Submit")
	return v
}
