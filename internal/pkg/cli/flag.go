// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

package cli

// Long flag names.
const (
	// Common flags.
	nameFlag   = "name"
	regionFlag = "region"
	jsonFlag   = "json"
	forceFlag  = "force"

	// Command specific flags.
	sourceFlag               = "source"
	allowUnauthenticatedFlag = "allow-unauthenticated"
	envVarsFlag              = "set-env-vars"
	secretsFlag              = "set-secrets"
	minInstancesFlag         = "min-instances"
	maxInstancesFlag         = "max-instances"
	noCPUThrottlingFlag      = "no-cpu-throttling"
	dryRunFlag               = "dry-run"
	discordTokenFlag         = "discord-token"
	adkBaseURLFlag           = "adk-base-url"
	adkAppNameFlag           = "adk-app-name"
)

// Short flag names.
// A short flag only exists if the flag is mandatory by the command.
const (
	nameFlagShort   = "n"
	regionFlagShort = "r"
)

// Descriptions for flags.
const (
	nameFlagDescription   = "Name of the Cloud Run service."
	regionFlagDescription = "Region the service runs in."
	jsonFlagDescription   = "Optional. Output in JSON format."
	forceFlagDescription  = "Optional. Overwrite an existing .env file without asking."

	sourceFlagDescription               = "Directory with the source code to build and deploy."
	allowUnauthenticatedFlagDescription = "Allow unauthenticated requests to reach the service."
	envVarsFlagDescription              = "Environment variables to set on the service, as KEY=VALUE."
	secretsFlagDescription              = "Secret Manager values to expose to the service, as ENV_VAR=SECRET_NAME:VERSION."
	minInstancesFlagDescription         = "Number of container instances to keep warm."
	maxInstancesFlagDescription         = "Number of container instances to scale out to at most."
	noCPUThrottlingFlagDescription      = "Keep the CPU allocated outside of request processing."
	dryRunFlagDescription               = "Optional. Print the gcloud command line without running it."
	discordTokenFlagDescription         = "Token of the Discord bot account."
	adkBaseURLFlagDescription           = "Base URL of the agent service."
	adkAppNameFlagDescription           = "Name of the agent app that answers support questions."
)
