// Package apod provides an HTTP client for NASA's Astronomy Picture of the Day API.
//
// # Overview
//
// The APOD service returns one JSON record per day. apodwall only ever asks
// for today's record, so the client exposes a single call. The Fetcher
// interface lets the orchestrator and the CLI tests substitute a stub.
//
// # Client Usage
//
//	client, err := apod.NewClient("") // https://api.nasa.gov/planetary/apod
//	if err != nil {
//		return err
//	}
//	record, err := client.FetchToday(ctx, apiKey)
//
// NewClient accepts an alternate endpoint (the hidden --api-url flag) and
// options for the HTTP client and User-Agent. Endpoint reports the URL
// requests go to, without the key.
//
// # Request Semantics
//
// FetchToday sends exactly one GET with the api_key query parameter and no
// date, so the service answers with today's picture. Requests time out after
// 30 seconds and bodies larger than 1 MiB are rejected. There are no retries;
// the orchestrator decides what a failure means.
//
// # Error Handling
//
//   - transport failures and timeouts: faults.ErrNetwork
//   - HTTP status >= 400: faults.ErrAPI, with the service's error message when
//     the body carries one (invalid key, rate limit)
//   - malformed JSON or a record without title, date, media_type or url:
//     faults.ErrParse
//
// The request URL carries the API key, so transport errors are stripped of it
// before they are wrapped.
//
// # Records
//
// Record mirrors the JSON payload:
//
//	{
//	    "date": "2024-05-01",
//	    "title": "Nebula X",
//	    "explanation": "...",
//	    "media_type": "image",
//	    "url": "https://apod.nasa.gov/apod/image/2405/x_1024.jpg",
//	    "hdurl": "https://apod.nasa.gov/apod/image/2405/x.jpg",
//	    "copyright": "Jane Roe"
//	}
//
// media_type is "image" or "video"; only images can become wallpapers
// (IsImage). hdurl is optional and ImageURL prefers it only when the caller
// asks for it.
//
// # Testing Considerations
//
// Tests run the client against httptest servers via NewClient(server.URL)
// and assert on the received query, so no test talks to api.nasa.gov.
package apod
