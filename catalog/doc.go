// Package catalog provides a client for the movie catalog service.
//
// The package has three layers:
//
//   - Client: the HTTP transport. It attaches the bearer token from an
//     injected TokenSource to every request and reports any 401 through an
//     injected callback, since a rejected token invalidates the whole
//     session, not just the failing request.
//   - Normalizer: a pure, total converter from the backend's heterogeneous
//     RawMovie payloads to the canonical Film shape. Every Film field is
//     always populated; missing poster and backdrop URLs are synthesized
//     deterministically from the movie id.
//   - Operations: the read surface (List, Get, Search, TopRated, Similar,
//     Recommendations, AllPaged, StreamURL). Read operations never fail:
//     errors are logged and degraded to typed empty results so the catalog
//     view always renders.
//
// Usage:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := catalog.NewClient(
//		"http://localhost:8001",
//		logger,
//		catalog.WithTokenSource(sessions),
//		catalog.WithUnauthorizedHandler(sessions.HandleUnauthorized),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	norm := catalog.NewNormalizer("http://localhost:9000", "cinema-files")
//	ops := catalog.NewOperations(client, norm, logger)
//	films := ops.List(context.Background(), 1, 50)
package catalog
