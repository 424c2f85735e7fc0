// Package tmdb provides a client for The Movie Database (TMDB) v3 API.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: owns the request executor, the response cache and the session
//   - Services: Movies, TV, People, Search, Discover, Trending, Configuration
//     and Auth group the endpoints the way the TMDB documentation does
//   - Helpers: ReplacePath for endpoint templates and ImageURL for CDN links
//
// # Usage
//
// Create a client with an API key or a read access token:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := tmdb.NewClient(logger,
//		tmdb.WithAPIKey("your-api-key"),
//		tmdb.WithLanguage("en-US"),
//		tmdb.WithCache(200, 10*time.Minute),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	movie, err := client.Movies.Details(ctx, 550, tmdb.AppendToResponse("videos"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(movie.Title, tmdb.PosterURL(movie.PosterPath, "w500"))
//
// # Caching
//
// Successful GET responses are cached by path, query and language. The API
// key and session are not part of the key. Pass NoCache to bypass the cache
// for a single call or CacheTTL to override how long a response is kept.
// Popular movie listings default to a 30 minute TTL. POST requests are never
// cached and never retried automatically.
//
// # Errors
//
// Failed requests return *httpclient.Error. Use errors.Is with the
// httpclient sentinels, or httpclient.IsNotFound, to branch on the cause.
package tmdb
