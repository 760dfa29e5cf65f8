// Package route computes point-to-point costs between the named waypoints of
// a grid: the agent's Initial cell, the Dark Temple (D), the Portal Key (K)
// and the Portal (P).
//
// A Catalog runs one fresh search per (agent, from, to) query; Table runs it
// for every ordered pair of the alphabet. A→B and B→A are searched
// independently: entering a cell costs that cell's terrain, so the two
// directions differ whenever the endpoints lie on different terrains.
//
// Shapes lists the admissible visiting orders IP, IKP, IDP, IKDP and IDKP.
package route
