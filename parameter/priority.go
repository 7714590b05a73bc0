package parameter

// System Execution Priorities (lower runs first within a cadence)
const (
	PriorityDespawn   = 10 // Frame pass, before any tick system
	PriorityMovement  = 100
	PriorityCollision = 110 // After movement
	PriorityEating    = 120 // After collision so dead heads do not eat
	PriorityRespawn   = 130 // After collision so a death this tick reschedules first
	PriorityFood      = 200
)

// PriorityDiagnostics runs last in the frame pass
const PriorityDiagnostics = 1000

// DiagnosticsSampleInterval is the number of frames between telemetry samples
const DiagnosticsSampleInterval = 30
