// Package planetpath finds high-scoring routes across a planet modeled as a
// toroidal grid graph.
//
// A planet is a set of locations (x,y), each with a biome index and a
// quality. The grid wraps horizontally, so the surface is a cylinder closed
// by two poles: north at (0,maxY) and south at (0,minY). A route starts at
// the north pole, ends at the south pole, never visits a location twice and
// holds at most days × 3 locations. Its score is the sum of
// quality × biomeWeight[biome] over its locations.
//
// Packages:
//
//	planet/      node arena, successor lists, toroidal topology, reachability, region index
//	pathsearch/  best-first search over partial paths, scoring, result rendering
//	planetfile/  {(x,y);biome;quality} record reader
//	config/      YAML search profiles with environment overrides
//	cmd/planetpath  command-line front end (search, inspect)
//
// Quick example, a single column of three locations:
//
//	(0,2) N  biome 0, quality 1   →   1
//	  │
//	(0,1)    biome 1, quality 2   →  28
//	  │
//	(0,0) S  biome 0, quality 1   →   1
//
// planetpath search planet.txt --days 1 prints
//
//	[(0,2)(0,1)(0,0)] with score: 30
//
//	go install github.com/katalvlaran/planetpath/cmd/planetpath@latest
package planetpath
