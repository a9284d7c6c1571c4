// Package utils provides small value-conversion helpers shared by the
// normalizer and the enum catalog: numeric cell cleanup, digit checks and
// display-label generation.
package utils
