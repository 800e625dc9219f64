package cli

// Export internal functions for testing.

// RunEmbed exports runEmbed for testing.
var RunEmbed = runEmbed

// RunBatch exports runBatch for testing.
var RunBatch = runBatch

// RunSimilarity exports runSimilarity for testing.
var RunSimilarity = runSimilarity

// RunModels exports runModels for testing.
var RunModels = runModels

// RunUsage exports runUsage for testing.
var RunUsage = runUsage

// RunCompat exports runCompat for testing.
var RunCompat = runCompat

// RunConfigSet exports runConfigSet for testing.
var RunConfigSet = runConfigSet

// RunConfigGet exports runConfigGet for testing.
var RunConfigGet = runConfigGet

// RunConfigList exports runConfigList for testing.
var RunConfigList = runConfigList

// ClampParallel exports clampParallel for testing.
var ClampParallel = clampParallel

// ResolveText exports resolveText for testing.
var ResolveText = resolveText

// ReadLines exports readLines for testing.
var ReadLines = readLines

// WriteFileAtomic exports writeFileAtomic for testing.
var WriteFileAtomic = writeFileAtomic

// IsValidConfigKey exports isValidConfigKey for testing.
var IsValidConfigKey = isValidConfigKey

// ValidConfigKeys exports validConfigKeys for testing.
var ValidConfigKeys = validConfigKeys

// EnvVarForKey exports envVarForKey for testing.
var EnvVarForKey = envVarForKey
