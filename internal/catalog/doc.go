// Package catalog loads the static song catalog and validates it into
// typed model.Song records.
//
// A catalog is a JSON array of beatmapsets:
//
//	[
//	  {"id": 1001, "title": "Song", "artist": "Artist", "length": 132,
//	   "nsfw": false, "loved": false,
//	   "beatmaps": [{"mode": "osu", "sr": 3.21}, {"mode": "4k", "sr": 2.5}]}
//	]
//
// Every entry is validated at load time (see dto.JSONSong.ToSong), and ids
// must be unique. Catalog order is preserved exactly; it determines which
// songs appear first to the eligibility filter.
//
// # Loading
//
//	cat, err := catalog.LoadFile("catalog.json")
//
// Several sources, local or remote, can be merged with a Loader:
//
//	loader := catalog.NewLoader(http.NewClient(), catalog.RetryPolicy{MaxRetries: 3, Cooldown: 0.2, Exponent: 4})
//	cat, err := loader.Load(ctx, []string{"base.json", "https://example.com/extra.json"})
package catalog
