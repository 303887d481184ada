// Package criteria evaluates decision-making criteria over payoff matrices.
//
// A Matrix holds one row per candidate strategy and one column per state of
// nature whose probability is unknown. Three classic criteria reduce it to a
// scalar, each encoding a different risk posture:
//
//   - Minimax: the best worst-case payoff (pure pessimism).
//   - Savage: the smallest worst-case regret, where the regret of a strategy
//     in a state is its gap to the best payoff any strategy achieves there.
//   - Hurwicz: the best coefficient-weighted blend of a strategy's worst and
//     best payoffs.
//
// Maximax (pure optimism) rounds out the coefficient-0 end of the Hurwicz
// scale. Every criterion is a pure function: deterministic, side-effect
// free, and safe for concurrent callers. Savage works on a private copy and
// never mutates the caller's matrix.
//
// Evaluate computes all criteria at once together with a per-strategy
// breakdown. Scenario adds a YAML file format for named payoff studies.
// Criterion and NewCriterion expose the same computations behind a by-name
// selection surface for the CLI.
package criteria
