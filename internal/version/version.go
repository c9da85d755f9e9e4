// Package version provides centralized version information for octoctl.
// The version follows semantic versioning (semver) conventions and is
// surfaced through the CLI --version flag and the User-Agent header sent
// with every printer API request.
package version

// OctoctlVersion holds the current octoctl CLI version.
// Format: major.minor.patch[-prerelease][+build]
const OctoctlVersion = "0.1.0-dev"
