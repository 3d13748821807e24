// Package mongo implementa los repositorios sobre MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Client envuelve la conexión. Se construye explícitamente en el arranque
// y se inyecta en los repos; el ciclo de vida (Close) queda en manos del
// caller, no de un singleton de paquete.
type Client struct {
	*mongo.Client
	Database *mongo.Database
	logger   *zap.Logger
}

func NewClient(uri, database string, logger *zap.Logger) (*Client, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetMinPoolSize(1).
		SetMaxConnIdleTime(30 * time.Minute).
		SetServerSelectionTimeout(5 * time.Second).
		SetConnectTimeout(10 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping MongoDB: %w", err)
	}

	logger.Info("base de datos conectada", zap.String("database", database))

	return &Client{
		Client:   client,
		Database: client.Database(database),
		logger:   logger,
	}, nil
}

// EnsureIndexes crea el índice único de email en usuarios. Es la garantía
// autoritativa de unicidad: el check-then-create del registro puede correr
// en paralelo y acá se resuelve el empate.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.Database.Collection("usuarios").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		c.logger.Error("fallo al desconectar MongoDB", zap.Error(err))
		return err
	}
	c.logger.Info("conexión a la base de datos cerrada")
	return nil
}
