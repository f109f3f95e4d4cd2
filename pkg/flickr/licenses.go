package flickr

// The API's flickr.photos.licenses.getInfo method returns licenses by
// their full names. These tables add a short ID that's easier to refer
// to elsewhere, and a compact display label where the full name is
// unwieldy.

var licenseIDs = map[string]string{
	"All Rights Reserved":                          "in-copyright",
	"Attribution-NonCommercial-ShareAlike License": "cc-by-nc-sa-2.0",
	"Attribution-NonCommercial License":            "cc-by-nc-2.0",
	"Attribution-NonCommercial-NoDerivs License":   "cc-by-nc-nd-2.0",
	"Attribution License":                          "cc-by-2.0",
	"Attribution-ShareAlike License":               "cc-by-sa-2.0",
	"Attribution-NoDerivs License":                 "cc-by-nd-2.0",
	"No known copyright restrictions":              "nkcr",
	"United States Government Work":                "usgov",
	"Public Domain Dedication (CC0)":               "cc0-1.0",
	"Public Domain Mark":                           "pdm",
}

var licenseLabels = map[string]string{
	"Attribution-NonCommercial-ShareAlike License": "CC BY-NC-SA 2.0",
	"Attribution-NonCommercial License":            "CC BY-NC 2.0",
	"Attribution-NonCommercial-NoDerivs License":   "CC BY-NC-ND 2.0",
	"Attribution License":                          "CC BY 2.0",
	"Attribution-ShareAlike License":               "CC BY-SA 2.0",
	"Attribution-NoDerivs License":                 "CC BY-ND 2.0",
	"Public Domain Dedication (CC0)":               "CC0 1.0",
}

// normalizeLicense builds a License from the name and URL the API sent.
func normalizeLicense(name, licenseURL string) License {
	id, ok := licenseIDs[name]
	if !ok {
		id = name
	}
	label, ok := licenseLabels[name]
	if !ok {
		label = name
	}
	return License{ID: id, Label: label, URL: licenseURL}
}
