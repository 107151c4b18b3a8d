package models

// ============================================================================
// PERSISTENCE CONSTANTS
// ============================================================================

// DefaultSlotName is the name of the key-value slot holding the serialized list
const DefaultSlotName = "tasks"

// ============================================================================
// SEED CONSTANTS
// ============================================================================

// DefaultSeedLimit is the number of upstream records consumed by a seed import
const DefaultSeedLimit = 10
