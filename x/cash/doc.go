/*
Package cash defines a simple single-token ledger: wallets identified by an
address, holding an integer balance.

It provides the base transfer primitives the token engine builds on:
MoveCoins, IssueCoins (mint) and BurnCoins. The fee-aware transfer logic does
NOT live here; see x/token for the interception path.
*/
package cash
