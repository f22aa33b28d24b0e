//go:build integration

package repository

import (
	"os"
	"testing"

	"lfg-backend/internal/testutils"
)

func TestMain(m *testing.M) {
	os.Exit(testutils.RunWithCleanup(m, "repository"))
}
