package blog_test

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/quill/pkg/blogsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for blog service end-to-end tests.
 * This includes container setup, account helpers, and assertions.
 */

const (
	testImageName = "quill-blog-test:latest"

	bootstrapToken = "test-bootstrap-token-12345"
	adminName      = "Administrator"
	adminEmail     = "admin@example.com"
	adminPassword  = "Admin123!"
	userPassword   = "User123!"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Blog Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Blog Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

// buildDockerImage builds the test Docker image.
func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/blog/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

// cleanupDockerImage removes the test Docker image.
func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// baseEnv is the container environment shared by every test.
func baseEnv() map[string]string {
	return map[string]string{
		"BOOTSTRAP_TOKEN":  bootstrapToken,
		"DATABASE_FILE":    "/data/blog.db",
		"AUTH_PEPPER_FILE": "/data/pepper",
		"AUTH_ISSUER":      "blog-api",
		"AUTH_ALGORITHM":   "EdDSA",
		"ENV":              "test",
		"LOG_LEVEL":        "info",
		"LOG_FORMAT":       "json",
	}
}

// setupBlogContainer starts the blog service with relaxed rate limits and
// returns the base URL.
func setupBlogContainer(t *testing.T) string {
	t.Helper()

	env := baseEnv()
	// Tests make many rapid requests which would otherwise hit the strict production limits
	for _, profile := range []string{"STRICT", "MODERATE", "LENIENT"} {
		env["RATELIMIT_"+profile+"_REQUESTS"] = "1000"
		env["RATELIMIT_"+profile+"_WINDOW_SEC"] = "60"
		env["RATELIMIT_"+profile+"_BURST"] = "1000"
	}
	return startContainer(t, env)
}

// setupBlogContainerWithDefaultRateLimits starts the blog service with the
// production rate limits. Only rate limit tests should need it.
func setupBlogContainerWithDefaultRateLimits(t *testing.T) string {
	t.Helper()
	return startContainer(t, baseEnv())
}

func startContainer(t *testing.T, env map[string]string) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"3000/tcp"},
		Env:          env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("3000/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "3000")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// bootstrapAdmin creates the first admin account and logs it in.
func bootstrapAdmin(t *testing.T, client *blogsdk.Client) *blogsdk.Session {
	t.Helper()
	ctx := context.Background()

	admin, err := client.Bootstrap(ctx, bootstrapToken, blogsdk.BootstrapRequest{
		Name:     adminName,
		Email:    adminEmail,
		Password: adminPassword,
	})
	require.NoError(t, err, "Bootstrap should succeed")
	require.Equal(t, "admin", admin.Role)

	session, err := client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err, "Admin login should succeed")
	return session
}

// registerUser creates a regular account and returns its session.
func registerUser(t *testing.T, client *blogsdk.Client, name, email string) *blogsdk.Session {
	t.Helper()

	session, err := client.Register(context.Background(), blogsdk.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: userPassword,
	})
	require.NoError(t, err, "Register should succeed")
	require.NotEmpty(t, session.Token())
	return session
}

// assertStatus checks that err is an API error with the given status.
func assertStatus(t *testing.T, err error, code int, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, blogsdk.IsStatus(err, code), "%s - expected HTTP %d, got: %v", context, code, err)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *blogsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
