/*
Package redist implements the redistribution machinery of the token engine:
append-only reward rosters, and the resumable, budget-bounded round-robin
distributor that pays accrued rewards out of a pool account.

Two roster flavours exist. The holder registry tracks accounts holding
weight in an external weight source (the AMM receipt token); payouts are
proportional to their live weight. The burn ledger tracks accounts by their
accumulated contribution to the burn sink; payouts are proportional to the
recorded contribution.

A distributor never performs more than one full pass per run and never
visits more accounts than the caller-supplied budget allows. Its cursor is
durable, so successive runs resume where the previous one stopped.
*/
package redist
