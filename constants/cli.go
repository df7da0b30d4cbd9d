package constants

// CLI Commands
const (
	CmdRoot   = "edgebridge"
	CmdCheck  = "check"
	CmdServe  = "serve"
	CmdApps   = "apps"
	CmdVercel = "vercel"
)

// CLI Short Descriptions
const (
	DescRoot   = "Bind a backend application to the serverless entry point"
	DescCheck  = "Load the entry adapter and report the outcome"
	DescServe  = "Serve the bound application locally"
	DescApps   = "List registered applications"
	DescVercel = "Render vercel.json for the entry function"
)

// CLI Exit Codes
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitPathFailure = 2
	ExitImport      = 3
	ExitSymbol      = 4
	ExitConfig      = 5
)

// CLI Messages
const (
	MsgLoadOK        = "OK: %s bound to application %q"
	MsgLoadFailed    = "load failed (%s): %v"
	MsgLayoutAdapter = "adapter dir: %s"
	MsgLayoutBackend = "backend dir: %s"
	MsgNoApps        = "no applications registered"
	MsgServing       = "serving %s on http://%s"
	MsgMetrics       = "metrics on http://%s%s"
)
