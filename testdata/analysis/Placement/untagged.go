package testdata

import _ "github.com/kinghuynh/messageforge" // want `file must have "//go:build messageforge" constraint when importing messageforge`
