/*
Package token implements the fee bearing transfer path of the ledger token.

Every transfer is routed through a single interceptor handler. Transfers
towards the configured pair address are sells: four permille rated fee
components are carved out of the amount and forwarded to the LP reward
pool, the burn sink, the burn reward pool and the treasury before the net
amount reaches the pair. The same call opportunistically registers reward
candidates, runs exactly one of the two reward distributors selected by an
alternating flag, and triggers the vesting release check. The whole call is
atomic: any failing step rolls back everything, fee sub transfers included.

Configuration is a gconf singleton owned by a single account. Updating it,
ownership transfer included, is a patch message signed by the owner.
*/
package token
