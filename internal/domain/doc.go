// Package domain models per-district disaster metrics and the rules that
// turn them into an urgency score and a recommended action tier.
//
// # Metrics
//
// Each generation cycle produces one DistrictRecord per district with four
// sampled inputs:
//
//	weather severity:  Uniform(0,1), rounded to 2 decimals
//	disruption index:  Uniform(0.7,1.0), rounded to 2 decimals
//	road access:       categorical {Blocked, Low, Medium, High},
//	                   weighted 0.4/0.2/0.2/0.2
//	population:        UniformInt[5000,20000]
//
// and one derived input:
//
//	flood index:       floor(min(10, disruption*10)), an integer in [0,10]
//
// # Urgency score
//
// The urgency score is a fixed weighted sum over the inputs, rounded to
// two decimals:
//
//	urgency = 0.4*disruption + 0.2*(flood/10) + 0.2*severity + 0.2·[road == Blocked]
//
// The weights sum to 1.0 when the road is blocked, so the score is in [0,1]
// by construction. The score is a deterministic pure function of the four
// inputs; reprocessing the same inputs produces the same score.
//
// # Recommendation tier
//
// The tier is a step function of the urgency score alone, with strict
// threshold comparisons:
//
//	> 0.7   Immediate
//	> 0.5   Urgent
//	else    Monitor
//
// A score of exactly 0.70 is Urgent, not Immediate.
//
// # Resource needs
//
// Food, shelter, and medical needs are independent linear scalings of
// urgency and population, floored to whole units:
//
//	food    = floor(urgency * population * 0.02)
//	shelter = floor(urgency * population * 0.01)
//	medical = floor(urgency * population * 0.015)
//
// Needs are computed on read and never stored on the record.
package domain
