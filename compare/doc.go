// Package compare checks whether two result CSV files describe the same
// solutions.
//
// Rows are matched by their initialization centroids, compared as a set.
// Distortion must match exactly; centroids are compared as sets of points
// and clusters as sets of sets of points, so neither cluster order nor
// member order matters.
//
// Checks run in a fixed order and the first violation is reported:
//
//  1. Both files have every required column.
//  2. No file repeats a set of initialization centroids.
//  3. Every row of the second file exists in the first with equal fields.
//  4. Every row of the first file exists in the second.
package compare
