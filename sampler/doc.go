// Package sampler implements the single-operation "next non-negative real"
// capability every station consumes its interarrival, service, patience and
// post-processing delays through, plus the config-time factories for the
// distributions a network wires in: exponential, log-normal, gamma,
// uniform, triangular, deterministic and empirical.
//
// Every random factory takes an explicit *rand.Rand rather than reading global
// math/rand state, so a parameter study can seed each run independently
// without one run's draws perturbing another's.
package sampler
