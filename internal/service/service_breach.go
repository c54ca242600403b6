// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-pwned-check/internal/adapter"
	"github.com/MKhiriev/go-pwned-check/internal/logger"
	"github.com/MKhiriev/go-pwned-check/internal/utils"
	"github.com/MKhiriev/go-pwned-check/models"
)

// check states, logged at debug level
const (
	stateHashing    = "hashing"
	stateRequesting = "requesting"
	stateParsing    = "parsing"
	stateFound      = "found"
	stateNotFound   = "not_found"
	stateFailed     = "failed"
)

type breachCheckerService struct {
	adapter     adapter.RangeAdapter
	idGenerator *utils.UUIDGenerator

	logger *logger.Logger
}

func NewBreachCheckerService(rangeAdapter adapter.RangeAdapter, logger *logger.Logger) BreachChecker {
	return &breachCheckerService{
		adapter:     rangeAdapter,
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (s *breachCheckerService) Check(ctx context.Context, secret []byte) (models.MatchResult, error) {
	log := &logger.Logger{Logger: s.logger.With().Str("check_id", s.idGenerator.Generate()).Logger()}
	ctx = log.WithContext(ctx)

	log.Debug().Str("state", stateHashing).Msg("check started")
	fp := models.NewFingerprint(utils.HashSHA1(secret))
	prefix, suffix := fp.Prefix(), fp.Suffix()

	log.Debug().Str("state", stateRequesting).Str("prefix", prefix).Msg("requesting range")
	body, err := s.adapter.Range(ctx, prefix)
	if err != nil {
		log.Debug().Str("state", stateFailed).Err(err).Msg("range lookup failed")
		return models.NotFound, mapAdapterError(err)
	}

	log.Debug().Str("state", stateParsing).Int("bytes", len(body)).Msg("parsing range")
	result, err := FindSuffix(body, suffix)
	if err != nil {
		log.Debug().Str("state", stateFailed).Err(err).Msg("range response rejected")
		return models.NotFound, err
	}

	if result.Found() {
		log.Debug().Str("state", stateFound).Uint64("count", result.Count).Msg("check finished")
	} else {
		log.Debug().Str("state", stateNotFound).Msg("check finished")
	}

	return result, nil
}
