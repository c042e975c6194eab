package remote

// RecipesTable is the one table the provisioning wizard manages.
const RecipesTable = "recipes"

// recipesDDL is the fixed schema-creation script executed through the
// execute_sql RPC: the recipes table plus row-level-security policies scoped
// to the acting principal. Not idempotent; callers must check TableExists
// first.
const recipesDDL = `
CREATE TABLE public.recipes (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  title TEXT NOT NULL,
  description TEXT,
  category TEXT,
  ingredients JSONB,
  steps JSONB,
  "timeMinutes" INT,
  difficulty TEXT,
  calories INT,
  image TEXT,
  notes TEXT,
  "createdAt" TIMESTAMPTZ DEFAULT NOW(),
  "updatedAt" TIMESTAMPTZ DEFAULT NOW(),
  user_id UUID DEFAULT auth.uid()
);
ALTER TABLE public.recipes ENABLE ROW LEVEL SECURITY;
CREATE POLICY "Public recipes are viewable by everyone." ON public.recipes FOR SELECT USING (true);
CREATE POLICY "Users can insert their own recipes." ON public.recipes FOR INSERT WITH CHECK (auth.uid() = user_id);
CREATE POLICY "Users can update their own recipes." ON public.recipes FOR UPDATE USING (auth.uid() = user_id);
CREATE POLICY "Users can delete their own recipes." ON public.recipes FOR DELETE USING (auth.uid() = user_id);
`
