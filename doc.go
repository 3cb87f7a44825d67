// Package dronepath finds the two closest drone waypoints in a plane and
// plans a greedy flight route through all of them.
//
// What is inside?
//
//	geom/      Point, Pair and Euclidean distance
//	closest/   BruteForce (O(n²)) and DivideAndConquer (O(n log n)) closest pair
//	route/     nearest-neighbour tour plus order/tour validation and path length
//	pointgen/  seeded random waypoint generator
//	simulate/  timing harness with logrus logging and pluggable metrics
//	cli/       cobra/viper command tree behind cmd/dronepath
//
// Both closest-pair algorithms return the same minimum distance on every
// valid input; the brute force serves as the oracle for the faster one.
// The core packages (geom, closest, route) are pure computation: no logging,
// no I/O, no shared state.
//
// Quick example:
//
//	pts, _ := pointgen.Generate(1000, pointgen.WithSeed(7))
//	pair, _ := closest.DivideAndConquer(pts)
//	tour, _ := route.Greedy(pts, route.WithReturnToBase())
//
//	go install github.com/katalvlaran/dronepath/cmd/dronepath@latest
package dronepath
