package gacha

// Spin pricing and pity tuning.
const (
	SpinCost      = 150
	SpinBatchSize = 10
	PityThreshold = 10
)

// Newly drawn pets start one step hungry and a little tired.
const (
	NewPetEnergy = 70
	NewPetHunger = 30
)

// Log message constants
const (
	LogMsgSpinCalled    = "Spin called"
	LogMsgSpin10Called  = "Spin10 called"
	LogMsgPetDrawn      = "Pet drawn"
	LogMsgPityTriggered = "Pity guarantee triggered"
	LogMsgSpinFailed    = "Spin failed"
	LogMsgNoRareEntries = "Pet catalog has no rare-or-above entries for pity draw"
)
