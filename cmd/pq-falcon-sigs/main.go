package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

var (
	version = "dev"
	commit  = "none"
)

// Globals are flags shared by every command.
type Globals struct {
	Level     string `short:"D" name:"level" placeholder:"512|1024" predictor:"level" help:"Security level (default: config file, else 1024)"`
	PublicKey string `short:"P" name:"public-key" type:"path" predictor:"key" help:"Public key file (default: ~/.pq-falcon-sigs/public.key)"`
	SecretKey string `short:"Z" name:"secret-key" type:"path" predictor:"key" help:"Secret key file (default: ~/.pq-falcon-sigs/secret.key)"`
	Debug     bool   `help:"Write debug records to the log file"`
}

type CLI struct {
	Globals

	Keygen      KeygenCmd      `cmd:"" help:"Generate a fresh Falcon key pair"`
	Sign        SignCmd        `cmd:"" help:"Sign a file"`
	Verify      VerifyCmd      `cmd:"" aliases:"open" help:"Verify a signed file and output the original message"`
	Fingerprint FingerprintCmd `cmd:"" help:"Show the fingerprint of a public key"`
	Paths       PathsCmd       `cmd:"" help:"Show key, config and log locations"`
	Version     VersionCmd     `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("pq-falcon-sigs"),
		kong.Description("Sign and verify files with the post-quantum signature scheme Falcon"),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser,
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
		kongplete.WithPredictor("key", newKeyPredictor()),
		kongplete.WithPredictor("level", newLevelPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	os.Exit(exitCode(ctx.Run(&cli.Globals)))
}
