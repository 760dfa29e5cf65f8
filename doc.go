// Package maze plans how two agents with different terrain abilities share
// the work of reaching a Portal on a rectangular digit map.
//
// What is in the module?
//
//	• Terrain and agent cost tables: who can walk where, and for how much
//	• Grids parsed from digit blocks, with start and waypoint markers
//	• Uninformed and informed search: DFS (recursive and explicit stack),
//	  BFS and A* with a Manhattan heuristic, all recording a full tree
//	• Route tables: the cost of every ordered waypoint pair per agent
//	• Assignment: the cheapest pair of itineraries that together cover the
//	  Dark Temple and the Portal Key, both ending at the Portal
//
// Layout:
//
//	terrain/  Terrain, Agent and the Costs table
//	grid/     Grid, Point, Marker, Direction orders and the digit parser
//	search/   Search, Tree, Node and the four algorithms
//	route/    Waypoint, Pair, Shape, Catalog and per-agent Table
//	assign/   RouteCost, Best, Plan and the text Report
//	api/      gin HTTP API over search and plan
//	cmd/      mazeplan, the command-line front end
//
// Quick ASCII example (H Human, O Octopus, D temple, K key, P portal):
//
//	H 2 2 O
//	2 P 2 2
//	D 2 2 K
//
// On an all-Land map the Human walks I→D→K→P for 8 while the Octopus, who
// pays 4 per Land cell, takes the shortest I→P for 12.
//
//	go run ./cmd/mazeplan -map maze.txt -human 0,0 -octopus 0,3 \
//	    -temple 2,0 -key 2,3 -portal 1,1
package maze
