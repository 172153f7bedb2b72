package apod

import "strings"

// Record mirrors the APOD API payload for a single day.
type Record struct {
	Title          string `json:"title"`
	Explanation    string `json:"explanation"`
	Date           string `json:"date"`
	URL            string `json:"url"`
	HDURL          string `json:"hdurl,omitempty"`
	MediaType      string `json:"media_type"`
	Copyright      string `json:"copyright,omitempty"`
	ServiceVersion string `json:"service_version,omitempty"`
}

// MediaImage is the media_type value for pictures; anything else (usually
// "video") cannot become a wallpaper.
const MediaImage = "image"

// IsImage reports whether the record points at a still image.
func (r Record) IsImage() bool {
	return strings.EqualFold(strings.TrimSpace(r.MediaType), MediaImage)
}

// ImageURL returns the HD url when preferHD is set and one exists, otherwise
// the standard url.
func (r Record) ImageURL(preferHD bool) string {
	if preferHD && r.HDURL != "" {
		return r.HDURL
	}
	if r.URL != "" {
		return r.URL
	}
	return r.HDURL
}

func (r *Record) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Explanation = strings.TrimSpace(r.Explanation)
	r.Date = strings.TrimSpace(r.Date)
	r.URL = strings.TrimSpace(r.URL)
	r.HDURL = strings.TrimSpace(r.HDURL)
	r.MediaType = strings.ToLower(strings.TrimSpace(r.MediaType))
	// APOD sends copyright with embedded newlines.
	r.Copyright = strings.Join(strings.Fields(r.Copyright), " ")
}

func (r Record) missingFields() []string {
	var missing []string
	if r.Title == "" {
		missing = append(missing, "title")
	}
	if r.Date == "" {
		missing = append(missing, "date")
	}
	if r.MediaType == "" {
		missing = append(missing, "media_type")
	}
	if r.URL == "" && r.HDURL == "" {
		missing = append(missing, "url")
	}
	return missing
}

// apiErrorBody covers both error shapes the API gateway and the APOD service emit.
type apiErrorBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Msg string `json:"msg"`
}

func (b apiErrorBody) message() string {
	if b.Error != nil {
		parts := make([]string, 0, 2)
		if code := strings.TrimSpace(b.Error.Code); code != "" {
			parts = append(parts, code)
		}
		if msg := strings.TrimSpace(b.Error.Message); msg != "" {
			parts = append(parts, msg)
		}
		return strings.Join(parts, ": ")
	}
	return strings.TrimSpace(b.Msg)
}
