package db

// SchemaSQL defines the staffing graph: people with skills, RFPs that need
// skills, projects that require skills, and assignment edges. Dates are
// stored as YYYY-MM-DD strings for parity with the upstream data producers;
// the models package parses them at the boundary.
const SchemaSQL = `
    -- ==========================================================================
    -- PERSON
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS person SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON person TYPE string;
    DEFINE FIELD IF NOT EXISTS role ON person TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS location ON person TYPE option<string>;

    -- ==========================================================================
    -- SKILL
    -- ==========================================================================
    -- Skills are keyed by their name ("Python", "Docker"), so edge targets
    -- read naturally in queries.
    DEFINE TABLE IF NOT EXISTS skill SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS name ON skill TYPE string;
    DEFINE FIELD IF NOT EXISTS category ON skill TYPE option<string>;

    -- ==========================================================================
    -- RFP
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS rfp SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS title ON rfp TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS description ON rfp TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS client ON rfp TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS budget ON rfp TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS start_date ON rfp TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS deadline ON rfp TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS duration_months ON rfp TYPE option<int>;
    DEFINE FIELD IF NOT EXISTS team_size ON rfp TYPE option<int>;

    -- ==========================================================================
    -- PROJECT
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS project SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS title ON project TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS description ON project TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS client ON project TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS budget ON project TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS start_date ON project TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS end_date ON project TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS status ON project TYPE string DEFAULT 'planned';
    DEFINE FIELD IF NOT EXISTS team_size ON project TYPE option<int>;
    DEFINE INDEX IF NOT EXISTS project_status ON project FIELDS status;

    -- ==========================================================================
    -- HAS_SKILL (person -> skill)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS has_skill TYPE RELATION IN person OUT skill SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS level ON has_skill TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS unique_key ON has_skill VALUE <string>string::concat(<string>in, '|', <string>out);
    DEFINE INDEX IF NOT EXISTS unique_has_skill ON has_skill FIELDS unique_key UNIQUE;

    -- ==========================================================================
    -- NEEDS (rfp -> skill)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS needs TYPE RELATION IN rfp OUT skill SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS mandatory ON needs TYPE bool DEFAULT false;
    DEFINE FIELD IF NOT EXISTS experience_level ON needs TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS unique_key ON needs VALUE <string>string::concat(<string>in, '|', <string>out);
    DEFINE INDEX IF NOT EXISTS unique_needs ON needs FIELDS unique_key UNIQUE;

    -- ==========================================================================
    -- REQUIRES (project -> skill)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS requires TYPE RELATION IN project OUT skill SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS mandatory ON requires TYPE bool DEFAULT false;
    DEFINE FIELD IF NOT EXISTS minimum_level ON requires TYPE option<string>;

    -- ==========================================================================
    -- ASSIGNED_TO (person -> project)
    -- ==========================================================================
    DEFINE TABLE IF NOT EXISTS assigned_to TYPE RELATION IN person OUT project SCHEMAFULL;
    DEFINE FIELD IF NOT EXISTS start_date ON assigned_to TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS end_date ON assigned_to TYPE option<string>;
    DEFINE FIELD IF NOT EXISTS allocation_percentage ON assigned_to TYPE int DEFAULT 100;
`
