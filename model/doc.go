// Package model defines core types used throughout lloyd.
//
// # Data Types
//
//   - Point: 2D coordinate with a mutable cluster label and running distance
//   - Centroid: 2D coordinate representing one cluster
//
// A centroid's position within its slice is the cluster label it represents.
package model
