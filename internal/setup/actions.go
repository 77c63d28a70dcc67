package setup

import (
	"antigravity/internal/model"
	"antigravity/internal/pyenv"
)

// Indirection layer to allow stubbing in tests

var (
	fnRunSetup            = runSetup
	fnCheckPython         = checkPythonVersion
	fnCreateDirectories   = createDirectories
	fnCheckModel          = checkModelExists
	fnInstallDependencies = installDependencies
	fnVerifyDependencies  = verifyDependencies

	fnFindPython   = pyenv.Find
	fnDetectPython = pyenv.Detect
	fnRunCmd       = RunCmd
	fnTotalMemory  = model.TotalMemory
	fnModelStatus  = model.Check
	fnIsPortBusy   = isPortBusy
)
