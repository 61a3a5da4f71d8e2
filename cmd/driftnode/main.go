// Command driftnode runs a peer in the social-network blockchain.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v2"

	"github.com/driftchain/driftchain/config"
	"github.com/driftchain/driftchain/consensus"
	"github.com/driftchain/driftchain/core"
	"github.com/driftchain/driftchain/crypto"
	"github.com/driftchain/driftchain/events"
	"github.com/driftchain/driftchain/node"
	"github.com/driftchain/driftchain/telemetry"
	"github.com/driftchain/driftchain/transport/httprpc"
	"github.com/driftchain/driftchain/walletkey"
)

func main() {
	app := &cli.App{
		Name:  "driftnode",
		Usage: "a validator node for the social-network blockchain",
		Commands: []*cli.Command{
			runCommand,
			genKeyCommand,
			genesisCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var runCommand = &cli.Command{
	Name:  "run",
	Usage: "start a node: bootstrap, serve, and run the round clock",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "config.json", Usage: "path to config file"},
		&cli.StringFlag{Name: "key", Value: "", Usage: "path to this node's keystore; overrides private_key_path, and with neither set the node runs without a signing key"},
		&cli.DurationFlag{Name: "period", Value: 10 * time.Second, Usage: "round period P, must be >= 4s"},
		&cli.StringFlag{Name: "metrics-addr", Value: "", Usage: "address to serve /metrics on; empty disables metrics"},
	},
	Action: runAction,
}

func runAction(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var icoPKs map[string]bool
	if cfg.ICOPublicKeysPath != "" {
		icoPKs, err = config.LoadICOPublicKeySet(cfg.ICOPublicKeysPath)
		if err != nil {
			return fmt.Errorf("ico public keys: %w", err)
		}
	}
	params := cfg.Params(icoPKs)

	var privKey *crypto.PrivateKey
	keyPath := c.String("key")
	if keyPath == "" {
		keyPath = cfg.PrivateKeyPath
	}
	if keyPath != "" {
		password := os.Getenv("DRIFTNODE_PASSWORD")
		priv, err := walletkey.LoadKey(keyPath, password)
		if err != nil {
			return fmt.Errorf("load key: %w", err)
		}
		privKey = &priv
	}

	var reg *prometheus.Registry
	var metrics *telemetry.Metrics
	if addr := c.String("metrics-addr"); addr != "" {
		reg = prometheus.NewRegistry()
		metrics = telemetry.NewMetrics(reg)
		go serveMetrics(addr, reg)
	}

	client := httprpc.NewClient(5 * time.Second)
	clock := consensus.NewTickerClock(c.Duration("period"))

	emitter := events.NewEmitter()
	emitter.Subscribe(events.EventValidatorWon, func(ev events.Event) {
		log.Printf("validator %v elected for head %s", ev.Data["validator_pk_hex"], ev.Hash)
	})
	emitter.Subscribe(events.EventPeerJoined, func(ev events.Event) {
		log.Printf("peer joined: %v", ev.Data["address"])
	})

	cfgNode := node.Config{
		SelfAddr: cfg.SelfAddress,
		Params:   params,
		Client:   client,
		Clock:    clock,
		PrivKey:  privKey,
		Metrics:  metrics,
		Emitter:  emitter,
	}
	n := node.New(cfgNode)

	if cfg.InitBlockchainPath != "" {
		chain, accounts, err := loadInitChain(cfg.InitBlockchainPath, params.ValidationReward)
		if err != nil {
			return fmt.Errorf("init blockchain: %w", err)
		}
		n.SeedChain(chain, accounts)
	}

	var seedPeers []string
	if cfg.SeedPeersPath != "" {
		seedPeers, err = config.LoadAddressList(cfg.SeedPeersPath)
		if err != nil {
			return fmt.Errorf("seed peers: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := n.Bootstrap(ctx, seedPeers, nowSeconds()); err != nil {
		cancel()
		return fmt.Errorf("bootstrap: %w", err)
	}
	cancel()

	server := httprpc.NewServer(listenAddr(cfg.SelfAddress), n, nowSeconds)
	if err := server.Start(); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	defer server.Stop()
	log.Printf("driftnode listening on %s", server.Addr())

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		n.RunRoundClock(context.Background(), stop)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("shutting down")
	close(stop)
	wg.Wait()
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics server stopped: %v", err)
	}
}

func nowSeconds() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// listenAddr strips the scheme from a self_address such as
// "http://host:port" (the form peers use to reach this node) down to
// the "host:port" net.Listen expects.
func listenAddr(selfAddr string) string {
	if u, err := url.Parse(selfAddr); err == nil && u.Host != "" {
		return u.Host
	}
	return selfAddr
}

func loadInitChain(path string, reward int64) (*core.Chain, core.AccountMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var blocks []*core.Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return nil, nil, err
	}
	chain, err := core.ChainFromList(blocks)
	if err != nil {
		return nil, nil, err
	}
	return chain, core.Reduce(chain, reward), nil
}

var genKeyCommand = &cli.Command{
	Name:  "genkey",
	Usage: "generate a new signing key and save it to an encrypted keystore",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "out", Value: "validator.key", Usage: "output keystore path"},
	},
	Action: func(c *cli.Context) error {
		password := os.Getenv("DRIFTNODE_PASSWORD")
		if password == "" {
			log.Println("warning: DRIFTNODE_PASSWORD not set, keystore will use an empty password")
		}
		w, err := walletkey.Generate()
		if err != nil {
			return err
		}
		if err := walletkey.SaveKey(c.String("out"), password, w.PrivKey()); err != nil {
			return err
		}
		fmt.Printf("public key: %s\n", w.PubKeyHex())
		fmt.Printf("saved to: %s\n", c.String("out"))
		return nil
	},
}

var genesisCommand = &cli.Command{
	Name:  "genesis",
	Usage: "build a signed genesis block from a set of ICO-holder keystores",
	Flags: []cli.Flag{
		&cli.StringSliceFlag{Name: "holder", Usage: "path to an ICO holder's keystore; repeatable"},
		&cli.StringFlag{Name: "proposer", Required: true, Usage: "path to the genesis proposer's keystore"},
		&cli.Int64Flag{Name: "ico-tokens", Required: true, Usage: "stake minted to each holder"},
		&cli.StringFlag{Name: "out", Value: "genesis.json", Usage: "output path for the init blockchain file"},
	},
	Action: func(c *cli.Context) error {
		password := os.Getenv("DRIFTNODE_PASSWORD")

		holderPaths := c.StringSlice("holder")
		holders := make([]*walletkey.Wallet, 0, len(holderPaths))
		for _, path := range holderPaths {
			priv, err := walletkey.LoadKey(path, password)
			if err != nil {
				return fmt.Errorf("holder %s: %w", path, err)
			}
			holders = append(holders, walletkey.New(priv))
		}

		proposerPriv, err := walletkey.LoadKey(c.String("proposer"), password)
		if err != nil {
			return fmt.Errorf("proposer: %w", err)
		}
		proposer := walletkey.New(proposerPriv)

		block := config.BuildGenesisICOBlock(holders, c.Int64("ico-tokens"), proposer, nowSeconds())
		data, err := json.MarshalIndent([]*core.Block{block}, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(c.String("out"), data, 0644)
	},
}
