// Package classify maps text fragments to structural roles using
// typography alone.
//
// Classification is a pure, stateless function of a fragment's font
// descriptor (family, size, weight) against a configured [Thresholds]
// table; it never inspects neighboring fragments. The possible roles form
// a closed set:
//
//   - [RoleTitle] - starts a new entity (two ordered size tiers are
//     supported, so a variant entry nested under a parent is
//     distinguishable from a top-level entry)
//   - [RoleSectionHeader] - a heading inside an entity's body
//   - [RoleFieldLabel] - a label in the structured header preamble
//   - [RoleBodyText] - everything else
//
// A fragment whose size lands exactly on a threshold resolves to the
// higher role.
package classify
