// Package vehicle provides domain entities for the vehicle catalog: the
// Vehicle aggregate root and its optional one-to-one descriptors, Location
// (where the vehicle currently sits) and Condition (a fixed-vocabulary grade
// of its state).
//
// Key business rules:
//   - Creating a vehicle always attaches both descriptors; a listing cannot
//     be created without a city and a condition grade
//   - Editing upserts the descriptors: an existing row is mutated in place,
//     a missing one is created
//   - Descriptors carry no state transitions; they are purely descriptive
package vehicle
