package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-neon-task/pb"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/shell"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "configs/config.json", "path to the board configuration")
	schemaFile := flag.String("schema", "configs/config.schema.json", "path to the configuration JSON schema")
	headless := flag.Bool("headless", false, "run the board without a window")
	frames := flag.Uint64("frames", 0, "headless: stop after this many frames (0 runs until interrupted)")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configFile, *schemaFile)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	system, err := actor.NewActorSystem("NeonTask",
		actor.WithLogger(golog.DefaultLogger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = system.Stop(context.Background()) }()

	// Buffer to avoid blocking the board
	snapshotCh := make(chan *pb.BoardSnapshot, 10)
	boardPID, err := system.Spawn(ctx, "board", simulation.NewBoardActor(snapshotCh, cfg))
	if err != nil {
		log.Fatalf("Failed to spawn board: %v", err)
	}
	client := simulation.NewClient(boardPID, simulation.DefaultAskTimeout)

	if *headless {
		runHeadless(ctx, client, snapshotCh, cfg, *frames, system.Logger())
		return
	}

	ebiten.SetWindowSize(int(cfg.WindowWidth), int(cfg.WindowHeight))
	ebiten.SetWindowTitle("Neon Task")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := shell.NewGame(ctx, client, snapshotCh, cfg, system.Logger())
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

func runHeadless(ctx context.Context, client *simulation.Client, snapshotCh <-chan *pb.BoardSnapshot, cfg *simulation.Config, frames uint64, logger golog.Logger) {
	loop := simulation.NewLoop(client, cfg.TickRate, logger)
	loop.MaxTicks = frames

	// nobody renders, keep the channel drained
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-snapshotCh:
			}
		}
	}()

	if err := loop.Run(ctx); err != nil {
		log.Fatal(err)
	}

	snap, err := client.Snapshot(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, item := range snap.GetItems() {
		logger.Infof("%s %-24q at (%.1f, %.1f) vel (%.2f, %.2f)",
			item.GetId(), item.GetTodo().GetTitle(),
			item.GetPosition().GetX(), item.GetPosition().GetY(),
			item.GetVelocity().GetX(), item.GetVelocity().GetY())
	}
	logger.Infof("Board at frame %d with %d todos inside %v",
		snap.GetFrame(), len(snap.GetItems()), simulation.BoundsFromProto(snap.GetBounds()))
}
