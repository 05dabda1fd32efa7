//go:build integration

package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"
)

const maxDBNameLength = 50

var (
	sharedContainer     *MongoDBContainer
	sharedContainerErr  error
	sharedContainerOnce sync.Once
	sharedContainerMu   sync.RWMutex
)

// GetSharedMongoDB starts the package-wide container on first use and returns it.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedContainerOnce.Do(func() {
		sharedContainerMu.Lock()
		defer sharedContainerMu.Unlock()
		sharedContainer, sharedContainerErr = SetupMongoDB(ctx)
	})

	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()
	return sharedContainer, sharedContainerErr
}

// CleanupSharedMongoDB terminates the shared container, if any.
func CleanupSharedMongoDB(ctx context.Context) error {
	sharedContainerMu.Lock()
	defer sharedContainerMu.Unlock()

	if sharedContainer == nil {
		return nil
	}
	err := sharedContainer.Cleanup(ctx)
	sharedContainer = nil
	return err
}

// SetupTestMainWithMongoDB runs the package tests against a shared container:
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
//	}
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		panic(err)
	}

	code := m.Run()

	if err := CleanupSharedMongoDB(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: mongodb container cleanup: %v\n", err)
	}
	return code
}

// GetSharedContainerURI returns the URI of the shared container.
// It panics when GetSharedMongoDB has not run.
func GetSharedContainerURI() string {
	sharedContainerMu.RLock()
	defer sharedContainerMu.RUnlock()

	if sharedContainer == nil {
		panic("testutil: shared mongodb container not started")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a unique MongoDB database name.
func SanitizeDBName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)

	if len(name) > maxDBNameLength {
		name = name[:maxDBNameLength]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
