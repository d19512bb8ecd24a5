// Package sqlinline holds every SQL statement the service runs. Each query
// starts with a marker comment so log lines can be traced back here.
package sqlinline

const QSelectProviderCredential = `--sql 4c1d7e92-3b58-4a06-bd17-8e2f5a96c430
select api_key
from provider_credentials
where provider = $1::text
limit 1;
`

const QUpsertProviderCredential = `--sql a7e3f018-92c4-4d6b-b5a9-1c84f02d7e65
insert into provider_credentials (id, provider, api_key, properties, created_at, updated_at)
values (gen_random_uuid(), $1::text, $2::text, coalesce($3::jsonb, '{}'::jsonb), now(), now())
on conflict (provider) do update set
    api_key = excluded.api_key,
    properties = excluded.properties,
    updated_at = now();
`
