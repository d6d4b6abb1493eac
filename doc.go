// Package arcpost solves arc-routing optimization problems on street-like
// graphs: given a graph whose required links must each be traversed at
// least once, it produces a closed walk of minimum (or near-minimum) total
// cost, starting and ending at a depot.
//
// Six variants are supported:
//
//	1 — UCPP   undirected Chinese Postman, exact
//	2 — DCPP   directed Chinese Postman, exact
//	3 — MCPP   mixed Chinese Postman, Frederickson's 2-approximation
//	4 — MCPP   mixed Chinese Postman, Yaoyuenyong's local-search refinement
//	5 — WPP    windy Chinese Postman, Win's heuristic
//	6 —        reserved, not supported
//	7 — WRPP   windy Rural Postman, Benavent's H1 heuristic
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/          Vertex, Link, Graph (four flavors: undirected, directed, mixed, windy)
//	shortestpath/  all-pairs shortest paths (Floyd-Warshall) with deterministic reconstruction
//	connectivity/  weak/strong components and degree-parity classification
//	matching/      minimum-cost perfect matching (exact bitmask DP, greedy fallback)
//	spantree/      minimum spanning tree/forest (Kruskal)
//	eulerian/      Eulerian circuit extraction (Hierholzer, forward-splice preference)
//	problem/       the (graph, required set, depot) triple a solver consumes
//	route/         the ordered walk a solver returns, and its text report
//	solver/        the six procedures above, and the augmentation steps they share
//	apperr/        the error kinds a solve can fail with
//	parser/        the OARLIB text instance format
//	internal/app/  the programmatic entry point, Solve(solverID, instanceText)
//	cmd/arcpost/   the command-line front end
//
// A solve is a pure function of (graph, required set, depot, solver
// choice): single-threaded, deterministic, reproducible bit-for-bit across
// runs on the same input.
package arcpost
