// Package imagefetch downloads the APOD image to local storage.
//
// # Overview
//
// Fetcher.Download makes a single GET for the image URL and stores the body at
// a caller-chosen destination. It is the only code that writes image files
// into the data directory.
//
// # Download Flow
//
//	GET imageURL
//	    ↓
//	<dest-dir>/.apod-*.part  (streamed, capped at 100 MiB)
//	    ↓
//	image.DecodeConfig       (jpeg, png, gif, bmp, tiff, webp)
//	    ↓
//	rename to destination
//
// The previous image stays intact when any step fails, and no temp file is
// left behind.
//
// # File Names
//
// DestinationFor builds <dir>/apod-<date><ext>. The date is the APOD date with
// everything but letters, digits and dashes removed; ext comes from the URL
// path when it names a known image type and is .jpg otherwise:
//
//	DestinationFor("/data", "2024-05-01", ".../image/2405/m42.png")
//	→ /data/apod-2024-05-01.png
//
// A new name each day keeps desktops that cache by URI from ignoring the new
// picture. Prune removes the other downloads (apod.<ext> and apod-*.<ext>
// with a known image extension) once a new one is applied; apod.json,
// state.toml and unrelated files are never touched.
//
// # Error Handling
//
//   - faults.ErrNetwork: transport failures, HTTP status >= 400, bodies over
//     the size cap
//   - faults.ErrIO: temp file, rename and prune failures
//   - faults.ErrParse: the payload does not decode as an image header
//
// # Testing Considerations
//
// WithHTTPClient and WithMaxBytes let tests point the Fetcher at httptest
// servers and exercise the size cap with tiny payloads.
package imagefetch
