/*
Package argon2 implements the memory-hard core of the Argon2 password
hashing / key derivation function: given a password, a salt, and cost
parameters, it produces a fixed-length pseudo-random tag whose computation
requires a tunable amount of memory and time.

Argon2 comes in four variants, selected by Params.Variant:

Argon2d (VariantDependent) uses data-dependent memory access. It is the
fastest variant and offers the strongest resistance to time-memory tradeoff
attacks, but its data-dependent addressing makes it unsuitable for hashing
secrets an attacker can observe through a side channel.

Argon2i (VariantIndependent) uses data-independent memory access, generated
from a counter stream rather than the data being hashed. It is side-channel
resistant but requires more passes over memory to reach comparable
resistance to tradeoff attacks.

Argon2id (VariantHybrid) combines both: the first pass uses
data-independent addressing and later passes use data-dependent addressing.

Argon2ds (VariantDependentSBox) is Argon2d augmented with a per-pass
substitution box.

The caller-facing concerns — encoded-hash string formats, password-string
parsing, CLI tooling — are out of scope; this package exposes exactly one
operation, Compute, over an already-assembled Params.
*/
package argon2
