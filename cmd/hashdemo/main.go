package main

import (
	"log"

	"github.com/davecrane/hashtab/pkg/hashmap/chained"
	"github.com/davecrane/hashtab/pkg/hashmap/openaddr"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Panicf("got error: %v\n", err)
	}
	defer logger.Sync()

	runChained(logger)
	runOpenAddressing(logger)
}

func runChained(logger *zap.Logger) {
	hm, err := chained.New(10)
	errCheck(logger, err)

	hm.Put(10, 100)
	hm.Put(20, 200)
	hm.Put(30, 300)

	if val, ok := hm.Get(20); ok {
		logger.Info("chained lookup hit",
			zap.Int64("key", 20), zap.Int64("value", val))
	}
	if _, ok := hm.Get(99); !ok {
		logger.Info("chained lookup miss", zap.Int64("key", 99))
	}
	logger.Info("chained table",
		zap.Int("len", hm.Len()),
		zap.Int("cap", hm.Cap()),
		zap.Float64("load", hm.PercentFull()))
	hm.Close()
}

func runOpenAddressing(logger *zap.Logger) {
	hm, err := openaddr.New(10)
	errCheck(logger, err)

	hm.Put(15, 150)
	hm.Put(25, 250)
	hm.Put(35, 350)

	if val, ok := hm.Get(25); ok {
		logger.Info("probing lookup hit",
			zap.Int64("key", 25), zap.Int64("value", val))
	}
	if _, ok := hm.Get(99); !ok {
		logger.Info("probing lookup miss", zap.Int64("key", 99))
	}

	// push the table through a few growths
	for i := int64(0); i < 64; i++ {
		hm.Put(i, i*10)
	}
	logger.Info("probing table after growth",
		zap.Int("len", hm.Len()),
		zap.Int("cap", hm.Cap()),
		zap.Float64("load", hm.PercentFull()))
	hm.Close()
}

func errCheck(logger *zap.Logger, err error) {
	if err != nil {
		logger.Fatal("got error", zap.Error(err))
	}
}
