/*
Package vesting releases time locked allocations to a fixed beneficiary
roster.

Every allocation locks a total amount that unlocks linearly over a cycle
measured in whole days. The release check runs on the transfer path: once
the elapsed day count since the recorded start time advances past the last
processed mark, every allocation not yet fully released receives the
difference between its linear target and what was already paid out, funded
from the vesting pool account. Within a single day the check is a no-op no
matter how many transfers happen.
*/
package vesting
