package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS logs (
    date                  TEXT PRIMARY KEY,
    car_km                REAL NOT NULL DEFAULT 0,
    bus_km                REAL NOT NULL DEFAULT 0,
    bike_walk_km          REAL NOT NULL DEFAULT 0,
    electricity_kwh       REAL NOT NULL DEFAULT 0,
    meat_meals            INTEGER NOT NULL DEFAULT 0,
    veg_meals             INTEGER NOT NULL DEFAULT 0,
    plastic_items_avoided INTEGER NOT NULL DEFAULT 0,
    total_kg              REAL NOT NULL,
    baseline_kg           REAL NOT NULL,
    savings_kg            REAL NOT NULL,
    logged_at             TEXT NOT NULL
);
`
